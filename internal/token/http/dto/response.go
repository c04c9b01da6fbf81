package dto

// EncodeResponse carries the token produced for an EncodeRequest.
type EncodeResponse struct {
	Token string `json:"token"`
}

// DecodeResponse carries the plaintext recovered from a DecodeRequest.
type DecodeResponse struct {
	Plaintext string `json:"plaintext"`
}

// EncodeBatchResponse carries tokens in request order.
type EncodeBatchResponse struct {
	Tokens []string `json:"tokens"`
}

// DecodeBatchResponse carries plaintexts in request order.
type DecodeBatchResponse struct {
	Plaintexts []string `json:"plaintexts"`
}
