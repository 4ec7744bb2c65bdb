package entities

// Car is a vehicle registered by a user for event participation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id

type Car struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Version  string `json:"version,omitempty"`
	CarClass string `json:"car_class,omitempty"`
}
