// ABOUTME: Form definitions and per-field validation messages
// ABOUTME: Messages mirror the storefront's historical wording

package schema

// LoginForm uses the historic login password policy, which is looser
// than signup's. The divergence is deliberate policy, not an accident;
// see DESIGN.md.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email_basic"`
	Password string `form:"password" validate:"required,password_login"`
}

var loginMessages = map[string]string{
	"email.required":          "Email is required",
	"email.email_basic":       "Invalid email format",
	"password.required":       "Password is required",
	"password.password_login": "Password must contain at least 6 characters, including letters and numbers",
}

func ValidateLogin(f LoginForm) map[string]string {
	return Errors(f, loginMessages)
}

// SignupForm uses the strict signup password policy.
type SignupForm struct {
	Email           string `form:"email" validate:"required,email_basic"`
	Password        string `form:"password" validate:"required,password_signup"`
	ConfirmPassword string `form:"cpassword" validate:"required,eqfield=Password"`
	FirstName       string `form:"firstName" validate:"required,min=2"`
	LastName        string `form:"lastName" validate:"required,min=2"`
}

var signupMessages = map[string]string{
	"email.required":           "Email is required",
	"email.email_basic":        "Please enter a valid email address",
	"password.required":        "Password is required",
	"password.password_signup": "Password must be at least 8 characters long, contain at least one uppercase letter, one lowercase letter, one number, and one special character",
	"cpassword.required":       "Confirm password is required",
	"cpassword.eqfield":        "Passwords does not match",
	"firstName.required":       "First name is required",
	"firstName.min":            "First name must be at least 2 characters long",
	"lastName.required":        "Last name is required",
	"lastName.min":             "Last name must be at least 2 characters long",
}

func ValidateSignup(f SignupForm) map[string]string {
	return Errors(f, signupMessages)
}

// EmailForm covers the send-otp and resend-otp steps.
type EmailForm struct {
	Email string `form:"email" validate:"required,email_basic"`
}

var emailMessages = map[string]string{
	"email.required":    "Email address is required",
	"email.email_basic": "Please enter a valid email address",
}

func ValidateEmail(f EmailForm) map[string]string {
	return Errors(f, emailMessages)
}

// OTPForm is a 6-digit verification code.
type OTPForm struct {
	OTP string `form:"otp" validate:"required,otp6"`
}

var otpMessages = map[string]string{
	"otp.required": "Verification code is required",
	"otp.otp6":     "Please enter a valid 6-digit code",
}

func ValidateOTP(f OTPForm) map[string]string {
	return Errors(f, otpMessages)
}

// ResetPasswordForm is the final step of the forgot-password flow. Its
// historical policy is plain min-8 rather than the signup character
// classes.
type ResetPasswordForm struct {
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

var resetPasswordMessages = map[string]string{
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 8 characters",
	"confirmPassword.required": "Please confirm your password",
	"confirmPassword.eqfield":  "Passwords must match",
}

func ValidateResetPassword(f ResetPasswordForm) map[string]string {
	return Errors(f, resetPasswordMessages)
}

// CustomOrderForm is the made-to-measure intake form: contact details,
// design brief, all body measurements, and two required image uploads.
type CustomOrderForm struct {
	FirstName        string `form:"first_name" validate:"required,min=2,max=100"`
	LastName         string `form:"last_name" validate:"required,min=2,max=100"`
	Email            string `form:"email" validate:"required,email_basic"`
	Whatsapp         string `form:"whatsapp" validate:"required,min=10,max=15"`
	StyleDescription string `form:"styleDescription" validate:"required"`
	Occasion         string `form:"occasion" validate:"required"`
	Budget           string `form:"budget" validate:"required"`
	Timeline         string `form:"timeline" validate:"required"`
	Neck             string `form:"neck" validate:"required"`
	Arms             string `form:"arms" validate:"required"`
	Shoulders        string `form:"shoulders" validate:"required"`
	Chest            string `form:"chest" validate:"required"`
	Waist            string `form:"waist" validate:"required"`
	Hips             string `form:"hips" validate:"required"`
	Inseam           string `form:"inseam" validate:"required"`
	Height           string `form:"height" validate:"required"`
	HasImage         bool   `form:"image" validate:"required"`
	HasPicture       bool   `form:"picture" validate:"required"`
}

var customOrderMessages = map[string]string{
	"first_name.required":        "Firstname is required",
	"first_name.min":             "Firstname must be at least 2 characters",
	"first_name.max":             "Firstname must be at most 100 characters",
	"last_name.required":         "Lastname is required",
	"last_name.min":              "Lastname must be at least 2 characters",
	"last_name.max":              "Lastname must be at most 100 characters",
	"email.required":             "Email is required",
	"email.email_basic":          "Invalid email format",
	"whatsapp.required":          "Whatsapp number is required",
	"whatsapp.min":               "Whatsapp number must be at least 10 digits",
	"whatsapp.max":               "Whatsapp number must be at most 15 digits",
	"styleDescription.required":  "Style description is required",
	"occasion.required":          "Occasion is required",
	"budget.required":            "Budget is required",
	"timeline.required":          "Timeline is required",
	"neck.required":              "Neck measurement is required",
	"arms.required":              "Arms measurement is required",
	"shoulders.required":         "Shoulders measurement is required",
	"chest.required":             "Chest measurement is required",
	"waist.required":             "Waist measurement is required",
	"hips.required":              "Hips measurement is required",
	"inseam.required":            "Inseam measurement is required",
	"height.required":            "Height measurement is required",
	"image.required":             "Style image is required",
	"picture.required":           "Personal picture is required",
}

func ValidateCustomOrder(f CustomOrderForm) map[string]string {
	return Errors(f, customOrderMessages)
}

// ShippingForm is checkout step 1.
type ShippingForm struct {
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `form:"lastName" validate:"required"`
	Email     string `form:"email" validate:"required,email_basic"`
	Phone     string `form:"phone" validate:"required"`
	Address   string `form:"address" validate:"required"`
	City      string `form:"city" validate:"required"`
	State     string `form:"state" validate:"required"`
	ZipCode   string `form:"zipCode" validate:"required"`

	// BillingDifferent routes the flow through the billing step. Not
	// validated; an unchecked box is a valid answer.
	BillingDifferent bool `form:"billingDifferent"`
}

var shippingMessages = map[string]string{
	"firstName.required": "First name is required",
	"lastName.required":  "Last name is required",
	"email.required":     "Email is required",
	"email.email_basic":  "Please enter a valid email address",
	"phone.required":     "Phone number is required",
	"address.required":   "Address is required",
	"city.required":      "City is required",
	"state.required":     "State is required",
	"zipCode.required":   "Zip code is required",
}

func ValidateShipping(f ShippingForm) map[string]string {
	return Errors(f, shippingMessages)
}

// BillingForm is checkout step 2. Fields are only validated when the
// billing address differs from shipping; callers skip validation
// otherwise.
type BillingForm struct {
	FirstName string `form:"billingFirstName" validate:"required"`
	LastName  string `form:"billingLastName" validate:"required"`
	Address   string `form:"billingAddress" validate:"required"`
	City      string `form:"billingCity" validate:"required"`
	State     string `form:"billingState" validate:"required"`
}

var billingMessages = map[string]string{
	"billingFirstName.required": "Billing first name is required",
	"billingLastName.required":  "Billing last name is required",
	"billingAddress.required":   "Billing address is required",
	"billingCity.required":      "Billing city is required",
	"billingState.required":     "Billing state is required",
}

func ValidateBilling(f BillingForm) map[string]string {
	return Errors(f, billingMessages)
}

// PaymentForm is checkout step 3.
type PaymentForm struct {
	Method     string `form:"paymentMethod" validate:"required,oneof=card transfer"`
	CardNumber string `form:"cardNumber" validate:"required_if=Method card"`
	Expiry     string `form:"expiry" validate:"required_if=Method card"`
	CVV        string `form:"cvv" validate:"required_if=Method card"`
}

var paymentMessages = map[string]string{
	"paymentMethod.required": "Payment method is required",
	"paymentMethod.oneof":    "Payment method must be card or transfer",
	"cardNumber.required_if": "Card number is required",
	"expiry.required_if":     "Card expiry is required",
	"cvv.required_if":        "Card CVV is required",
}

func ValidatePayment(f PaymentForm) map[string]string {
	return Errors(f, paymentMessages)
}
