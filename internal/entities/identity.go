package entities

// Identity describes who the current shopper is. An authenticated request
// carries a user id; an anonymous one carries only the cart session token.
// Right after login both can be present, which is what triggers the
// guest-cart merge.
type Identity struct {
	UserID       int64
	SessionToken string
}

func (i Identity) Authenticated() bool {
	return i.UserID != 0
}
