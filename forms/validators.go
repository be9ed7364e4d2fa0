package forms

import (
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var CourseDate validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := models.ParseCourseDate(value)
	return err == nil
}

var ObjectID validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return primitive.IsValidObjectID(value)
}

func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("courseDate", CourseDate)
	v.RegisterValidation("objectId", ObjectID)
}
