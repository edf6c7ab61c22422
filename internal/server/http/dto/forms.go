package dto

// LoginForm is the sign-in form.
type LoginForm struct {
	Username   string `form:"username" binding:"required"`
	Password   string `form:"password" binding:"required"`
	RememberMe bool   `form:"remember_me"`
}

// RegistrationForm is the sign-up form.
type RegistrationForm struct {
	Username  string `form:"username" binding:"required,max=64"`
	Email     string `form:"email" binding:"required,email,max=120"`
	Password  string `form:"password" binding:"required"`
	Password2 string `form:"password2" binding:"required,eqfield=Password"`
}

// EditProfileForm changes the account username.
type EditProfileForm struct {
	Username string `form:"username" binding:"required,max=64"`
}

// ReportForm selects a customer for the credit report.
type ReportForm struct {
	CustomerID string `form:"customer_id" binding:"required,max=64"`
}
