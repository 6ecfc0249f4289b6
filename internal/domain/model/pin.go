package model

// Pin is a user-submitted marker on the shared map.
type Pin struct {
	ID        string  `json:"id" bson:"id"`
	Lat       float64 `json:"lat" bson:"lat"`
	Lng       float64 `json:"lng" bson:"lng"`
	Message   string  `json:"message" bson:"message"`
	Timestamp string  `json:"timestamp" bson:"timestamp"`
}
