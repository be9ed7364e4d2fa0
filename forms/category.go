package forms

type CategoryForm struct {
	Name string `json:"name" binding:"required"`
}
