package crypto

// Cipher encrypts and decrypts an opaque buffer as a whole. It is the
// contract the container codec uses for whole-payload encryption.
//
// Both methods accept either form of [Credential]:
//
//	key:      nonce(12) ‖ tag(16) ‖ ciphertext
//	password: salt(16) ‖ nonce(12) ‖ tag(16) ‖ ciphertext
type Cipher interface {
	// Encrypt seals plaintext under cred. A fresh random nonce (and salt,
	// for passwords) is generated for every call.
	Encrypt(plaintext []byte, cred Credential) ([]byte, error)

	// Decrypt opens a buffer produced by Encrypt. It never returns data
	// whose tag did not verify; a wrong key or password, or any tampering,
	// yields models.ErrAuthentication.
	Decrypt(buffer []byte, cred Credential) ([]byte, error)
}
