package httpapi

// SubmitRequestBody is the JSON body of POST /requests.
type SubmitRequestBody struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
}
