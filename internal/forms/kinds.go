package forms

const (
	KindPersonCreate             = "person_create"
	KindPersonUpdate             = "person_update"
	KindPositionCreate           = "position_create"
	KindPositionUpdate           = "position_update"
	KindUserCreate               = "user_create"
	KindUserUpdate               = "user_update"
	KindUserUpdateMe             = "user_update_me"
	KindLogin                    = "login"
	KindRegister                 = "register"
	KindPasswordResetRequest     = "password_reset_request"
	KindPasswordReset            = "password_reset"
	KindChangePassword           = "change_password"
	KindEmailVerificationRequest = "email_verification_request"
	KindEmailVerification        = "email_verification"
	KindNewsCreate               = "news_create"
	KindNewsUpdate               = "news_update"
	KindDocumentCreate           = "document_create"
	KindDocumentUpdate           = "document_update"
	KindDocumentCategory         = "document_category"
	KindOrganizationCard         = "organization_card"
)
