package validator

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,ng_phone"`
	Course  *string `json:"course" validate:"omitempty,max=100"`
	Subject *string `json:"subject" validate:"omitempty,max=200"`
	Message string  `json:"message" validate:"required,min=1,max=5000"`
}

// EnrollRequest is the body of POST /api/enroll. A non-empty
// PaymentReference marks the enrollment paid; there is no server-side
// verification against the gateway (see DESIGN.md).
type EnrollRequest struct {
	Name             string   `json:"name" validate:"required,max=100"`
	Email            string   `json:"email" validate:"required,email"`
	Course           string   `json:"course" validate:"required,max=100"`
	PaymentReference *string  `json:"payment_reference" validate:"omitempty,max=100"`
	AmountPaid       *float64 `json:"amount_paid" validate:"omitempty,gte=0"`
}

// SubscribeRequest is the body of POST /api/newsletter/subscribe.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PaymentCreateRequest is the body of POST /api/payment/create.
type PaymentCreateRequest struct {
	Name   string  `json:"name" validate:"required,max=100"`
	Email  string  `json:"email" validate:"required,email"`
	Course string  `json:"course" validate:"required,max=100"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CourseUpsertRequest is used by the admin panel when creating or
// editing catalog entries.
type CourseUpsertRequest struct {
	Name          string   `json:"name" validate:"required,min=3,max=100"`
	Category      string   `json:"category" validate:"required,max=50"`
	Duration      string   `json:"duration" validate:"required,max=50"`
	Fee           float64  `json:"fee" validate:"course_fee"`
	Language      string   `json:"language" validate:"omitempty,max=20"`
	Status        string   `json:"status" validate:"omitempty,oneof=active inactive"`
	Description   string   `json:"description" validate:"required,min=10"`
	Learn         []string `json:"learn"`
	Prerequisites []string `json:"prerequisites"`
	Image         *string  `json:"image" validate:"omitempty,max=500"`
	Outline       *string  `json:"outline" validate:"omitempty,max=500"`
}

// TestimonialUpsertRequest is used by the admin panel.
type TestimonialUpsertRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Position string `json:"position" validate:"omitempty,max=100"`
	Message  string `json:"message" validate:"required,min=1"`
	Avatar   string `json:"avatar" validate:"omitempty,max=500"`
	Rating   int    `json:"rating" validate:"rating_range"`
}

// LoginRequest is the admin panel login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserCreateRequest creates an admin credential via the panel. The
// password arrives in plain text and is bcrypt-hashed before storage.
type UserCreateRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin superadmin"`
}

// UserUpdateRequest patches an admin credential. An absent password
// keeps the stored hash.
type UserUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin superadmin"`
}
