package entity

// Principal is the verified caller of an API request: the GitHub login that
// owns the bearer credential, plus the upstream token used on its behalf.
type Principal struct {
	Login       string
	AccessToken string
}
