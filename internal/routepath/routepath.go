// Package routepath stores canonical HTTP paths shared by handlers and views.
package routepath

const (
	Home                = "/"
	About               = "/about"
	Health              = "/health"
	Static              = "/static"
	AuthPrefix          = "/auth"
	SignIn              = "/auth/login"
	ForgotPassword      = "/auth/forgot-password"
	ForgotPasswordRetry = "/auth/forgot-password/retry"
)
