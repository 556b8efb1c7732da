package wbapi

// memberResponse is one element of the squad members array.
// uid is usually a string but is decoded loosely in case upstream sends a number.
type memberResponse struct {
	UID any `json:"uid"`
}
