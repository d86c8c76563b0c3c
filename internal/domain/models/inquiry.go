package models

// BookingRequest is a customer asking to join a tour. It is mailed, not stored.
type BookingRequest struct {
	TourID       uint   `json:"tourId" binding:"required" example:"1"`
	Name         string `json:"name" binding:"required,max=100" example:"Amina Otieno"`
	Email        string `json:"email" binding:"required,email" example:"amina@example.com"`
	Phone        string `json:"phone" binding:"required,max=30" example:"+254700000000"`
	Participants int    `json:"participants" binding:"required,min=1,max=50" example:"2"`
	Date         string `json:"date" example:"2025-06-01"`
	Message      string `json:"message" binding:"max=2000"`
}

// ContactMessage is a message from the public contact form.
type ContactMessage struct {
	Name    string `json:"name" binding:"required,max=100" example:"Brian Kamau"`
	Email   string `json:"email" binding:"required,email" example:"brian@example.com"`
	Subject string `json:"subject" binding:"max=200" example:"Group discounts"`
	Message string `json:"message" binding:"required,max=5000"`
}
