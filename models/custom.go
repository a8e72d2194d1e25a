// ABOUTME: Custom (made-to-measure) order models and submission payload
// ABOUTME: Submissions are multipart with two image uploads

package models

// FileUpload is a named file attached to a custom-order submission.
type FileUpload struct {
	Filename string
	Content  []byte
}

// CustomOrderSubmission carries the custom-order intake form. Contact
// and measurement fields are sent as multipart form values alongside the
// style image and personal picture.
type CustomOrderSubmission struct {
	FirstName        string
	LastName         string
	Email            string
	Whatsapp         string
	StyleDescription string
	Occasion         string
	Budget           string
	Timeline         string

	// Body measurements, free-text with units as entered.
	Neck      string
	Arms      string
	Shoulders string
	Chest     string
	Waist     string
	Hips      string
	Inseam    string
	Height    string

	Image   FileUpload // style reference image
	Picture FileUpload // personal picture

	CustomIdentity string
}

// FormFields renders the submission's scalar fields under their API
// names.
func (s CustomOrderSubmission) FormFields() map[string]string {
	return map[string]string{
		"first_name":       s.FirstName,
		"last_name":        s.LastName,
		"email":            s.Email,
		"whatsapp":         s.Whatsapp,
		"styleDescription": s.StyleDescription,
		"occasion":         s.Occasion,
		"budget":           s.Budget,
		"timeline":         s.Timeline,
		"neck":             s.Neck,
		"arms":             s.Arms,
		"shoulders":        s.Shoulders,
		"chest":            s.Chest,
		"waist":            s.Waist,
		"hips":             s.Hips,
		"inseam":           s.Inseam,
		"height":           s.Height,
		"custom_identity":  s.CustomIdentity,
	}
}

// CustomOrderResponse is the POST custom-orders/ result.
type CustomOrderResponse struct {
	Message      string `json:"message"`
	IdentityCode string `json:"identity_code"`
	OrderID      int    `json:"order_id"`
}

// CustomOrderItem is one submitted custom order in the identity-keyed
// list.
type CustomOrderItem struct {
	ID               int    `json:"id"`
	IdentityCode     string `json:"identity_code"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Whatsapp         string `json:"whatsapp"`
	StyleDescription string `json:"styleDescription"`
	Occasion         string `json:"occasion"`
	Budget           string `json:"budget"`
	Timeline         string `json:"timeline"`
	Status           string `json:"status"`
	ImageURL         string `json:"image_url"`
	PictureURL       string `json:"picture_url"`
}

// CustomOrderList is the GET custom-order-list/ response.
type CustomOrderList struct {
	IdentityCode string            `json:"identity_code"`
	Items        []CustomOrderItem `json:"items"`
}

// DeleteCustomOrderRequest identifies a custom order to remove.
type DeleteCustomOrderRequest struct {
	ProductCode  int
	IdentityCode string
}
