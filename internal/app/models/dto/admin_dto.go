package dto

// ConfirmQuery must carry confirm=true on destructive admin actions.
type ConfirmQuery struct {
	Confirm bool `form:"confirm"`
}
