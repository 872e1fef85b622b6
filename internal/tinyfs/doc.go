// Package tinyfs implements the TinyFS container: up to 255 named blobs in a
// single file, each optionally gzip-compressed, with optional AES-256-GCM
// encryption of everything after the header.
//
// # File layout
//
// All integers are little-endian.
//
//	header   magic u32 ("TINY") | flags u8
//	payload  (encrypted only) uvarint length | [salt16] nonce12 tag16 ciphertext
//	table    count u8 | count × (flags u8 | data_len u16 | name_len u8 | name)
//	data     count × data_len bytes, in table order
//
// Entries are written sorted by their uppercase name, then by exact name.
// Container flags are CaseInsensitive (bit 0), Encrypted (bit 1) and
// UTF8Names (bit 2). Entry flags are a reserved per-entry encryption bit
// (bit 0, always rejected) and GZip (bit 1). Any other bit set is a format
// error.
//
// Typical use:
//
//	c := tinyfs.New()
//	if _, err := c.Set("notes.txt", data); err != nil {
//		return err
//	}
//	c.SetEncrypted(true)
//	err := c.Save(w, crypto.PasswordCredential(password))
package tinyfs
