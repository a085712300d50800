package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	FirstName         string             `bson:"first_name"`
	LastName          string             `bson:"last_name"`
	Email             string             `bson:"email,omitempty"`
	Phone             string             `bson:"phone,omitempty"`
	DateOfBirth       string             `bson:"date_of_birth,omitempty"`
	Gender            string             `bson:"gender,omitempty"`
	Address           string             `bson:"address,omitempty"`
	InsuranceProvider string             `bson:"insurance_provider,omitempty"`
	InsuranceNumber   string             `bson:"insurance_number,omitempty"`
	Notes             string             `bson:"notes,omitempty"`
}
