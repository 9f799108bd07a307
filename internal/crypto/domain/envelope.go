package domain

// Envelope is the encrypted wrapper persisted in place of a plaintext payload.
//
// Ciphertext and Nonce are standard base64 strings so that the envelope itself is a
// plain JSON document. The nonce is generated fresh for every encryption and is never
// reused with the same key. Algorithm is empty for envelopes written by older
// versions, which always used AES-GCM.
type Envelope struct {
	Ciphertext string    `json:"ciphertext"`
	Nonce      string    `json:"nonce"`
	Algorithm  Algorithm `json:"algorithm,omitempty"`
}

// IsZero reports whether the envelope carries no ciphertext or nonce at all. A JSON
// document that happens to decode into an Envelope without these fields is not an
// envelope.
func (e Envelope) IsZero() bool {
	return e.Ciphertext == "" && e.Nonce == ""
}

// EffectiveAlgorithm returns the algorithm, defaulting to AESGCM.
func (e Envelope) EffectiveAlgorithm() Algorithm {
	if e.Algorithm == "" {
		return AESGCM
	}
	return e.Algorithm
}
