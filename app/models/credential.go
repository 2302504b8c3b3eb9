package models

// Validate checks if the credential meets all validation requirements
func (c *AdminCredential) Validate() error {
	return validate.Struct(c)
}
