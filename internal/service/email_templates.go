package service

import "fmt"

func verificationEmailTemplate(username, verificationURL, appName string) (subject, body string) {
	subject = fmt.Sprintf("Verify Your %s Account", appName)
	body = fmt.Sprintf(`Hello %s,

Thank you for creating an account with %s!

Please click the link below to verify your email address:
%s

If you didn't create this account, please ignore this email.

Best regards,
The %s Team`, username, appName, verificationURL, appName)
	return subject, body
}

func newsletterWelcomeTemplate(username, appName string) (subject, body string) {
	subject = fmt.Sprintf("Welcome to the %s Newsletter!", appName)
	body = fmt.Sprintf(`Hello %s,

Thank you for subscribing to the %s newsletter!

You'll receive updates about:
- New features and tools
- Bitcoin market insights
- Security tips and best practices
- Community updates

You can unsubscribe at any time by logging into your account.

Best regards,
The %s Team`, username, appName, appName)
	return subject, body
}
