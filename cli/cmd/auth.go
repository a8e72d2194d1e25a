// ABOUTME: Auth commands: login, register, verify, password reset, status
// ABOUTME: Forms validate locally before any request leaves the machine

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stephenolajire/Ronkz-Couture/models"
	"github.com/stephenolajire/Ronkz-Couture/schema"
)

var (
	authEmail     string
	authPassword  string
	authConfirm   string
	authFirstName string
	authLastName  string
	authOTP       string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage account authentication",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runLogin(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runRegister(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var authVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the registered email with an OTP",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runVerify(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var authResendCmd = &cobra.Command{
	Use:   "resend",
	Short: "Resend the verification OTP",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runResend(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var authForgotCmd = &cobra.Command{
	Use:   "forgot",
	Short: "Request a password reset OTP",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runForgot(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var authResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Verify the reset OTP and set a new password",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runReset(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		if code := runLogout(os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session state",
	Run: func(cmd *cobra.Command, args []string) {
		if code := runAuthStatus(os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	authLoginCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	authLoginCmd.Flags().StringVar(&authPassword, "password", "", "Account password")

	authRegisterCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	authRegisterCmd.Flags().StringVar(&authPassword, "password", "", "Account password")
	authRegisterCmd.Flags().StringVar(&authConfirm, "confirm", "", "Password confirmation")
	authRegisterCmd.Flags().StringVar(&authFirstName, "first-name", "", "First name")
	authRegisterCmd.Flags().StringVar(&authLastName, "last-name", "", "Last name")

	authVerifyCmd.Flags().StringVar(&authEmail, "email", "", "Email (defaults to the pending registration)")
	authVerifyCmd.Flags().StringVar(&authOTP, "otp", "", "Six-digit verification code")

	authResendCmd.Flags().StringVar(&authEmail, "email", "", "Email (defaults to the pending registration)")

	authForgotCmd.Flags().StringVar(&authEmail, "email", "", "Account email")

	authResetCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	authResetCmd.Flags().StringVar(&authOTP, "otp", "", "Six-digit reset code")
	authResetCmd.Flags().StringVar(&authPassword, "password", "", "New password")
	authResetCmd.Flags().StringVar(&authConfirm, "confirm", "", "New password confirmation")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authVerifyCmd)
	authCmd.AddCommand(authResendCmd)
	authCmd.AddCommand(authForgotCmd)
	authCmd.AddCommand(authResetCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runLogin(ctx context.Context, w io.Writer) int {
	form := schema.LoginForm{Email: authEmail, Password: authPassword}
	if fields := schema.ValidateLogin(form); len(fields) > 0 {
		printFieldErrors(w, fields)
		return 1
	}

	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	resp, err := s.Login.Do(ctx, models.LoginRequest{Email: authEmail, Password: authPassword})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else {
		fmt.Fprintln(w, resp.Message)
	}
	return 0
}

func runRegister(ctx context.Context, w io.Writer) int {
	form := schema.SignupForm{
		Email:           authEmail,
		Password:        authPassword,
		ConfirmPassword: authConfirm,
		FirstName:       authFirstName,
		LastName:        authLastName,
	}
	if fields := schema.ValidateSignup(form); len(fields) > 0 {
		printFieldErrors(w, fields)
		return 1
	}

	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	resp, err := s.Register.Do(ctx, models.RegisterRequest{
		Email:     authEmail,
		Password:  authPassword,
		FirstName: authFirstName,
		LastName:  authLastName,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else {
		fmt.Fprintln(w, resp.Message)
		if resp.VerificationMessage != "" {
			fmt.Fprintln(w, resp.VerificationMessage)
		}
	}
	return 0
}

func runVerify(ctx context.Context, w io.Writer) int {
	if fields := schema.ValidateOTP(schema.OTPForm{OTP: authOTP}); len(fields) > 0 {
		printFieldErrors(w, fields)
		return 1
	}

	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	email := authEmail
	if email == "" {
		email = s.PendingEmail()
	}
	if email == "" {
		fmt.Fprintln(w, "Error: no pending registration; pass --email")
		return 1
	}

	resp, err := s.VerifyEmail.Do(ctx, models.VerifyEmailRequest{Email: email, OTP: authOTP})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else {
		fmt.Fprintln(w, resp.Message)
	}
	return 0
}

func runResend(ctx context.Context, w io.Writer) int {
	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	email := authEmail
	if email == "" {
		email = s.PendingEmail()
	}
	if fields := schema.ValidateEmail(schema.EmailForm{Email: email}); len(fields) > 0 {
		printFieldErrors(w, fields)
		return 1
	}

	resp, err := s.ResendOTP.Do(ctx, models.EmailRequest{Email: email})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else {
		fmt.Fprintln(w, resp.Message)
	}
	return 0
}

func runForgot(ctx context.Context, w io.Writer) int {
	if fields := schema.ValidateEmail(schema.EmailForm{Email: authEmail}); len(fields) > 0 {
		printFieldErrors(w, fields)
		return 1
	}

	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	resp, err := s.SendOTP.Do(ctx, models.EmailRequest{Email: authEmail})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else {
		fmt.Fprintln(w, resp.Message)
	}
	return 0
}

func runReset(ctx context.Context, w io.Writer) int {
	if fields := schema.ValidateOTP(schema.OTPForm{OTP: authOTP}); len(fields) > 0 {
		printFieldErrors(w, fields)
		return 1
	}
	form := schema.ResetPasswordForm{Password: authPassword, ConfirmPassword: authConfirm}
	if fields := schema.ValidateResetPassword(form); len(fields) > 0 {
		printFieldErrors(w, fields)
		return 1
	}

	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if _, err := s.VerifyOTP.Do(ctx, models.VerifyOTPRequest{Email: authEmail, OTP: authOTP}); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	resp, err := s.ResetPassword.Do(ctx, models.ResetPasswordRequest{Email: authEmail, Password: authPassword})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else {
		fmt.Fprintln(w, resp.Message)
	}
	return 0
}

func runLogout(w io.Writer) int {
	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	s.Logout()
	fmt.Fprintln(w, "Logged out.")
	return 0
}

func runAuthStatus(w io.Writer) int {
	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	s.CheckAuth()
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(map[string]any{
			"authenticated": s.IsAuthenticated(),
			"user":          s.User(),
		}))
		return 0
	}
	if !s.IsAuthenticated() {
		fmt.Fprintln(w, "Not logged in.")
		return 0
	}
	if u := s.User(); u != nil {
		fmt.Fprintf(w, "Logged in as %s %s <%s>\n", u.FirstName, u.LastName, u.Email)
	} else {
		fmt.Fprintln(w, "Logged in.")
	}
	return 0
}
