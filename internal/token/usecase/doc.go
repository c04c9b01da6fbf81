/*
Package usecase orchestrates the token pipeline, turning UTF-8 plaintext into short,
case-insensitive, URL-safe tokens and back.

# Pipeline

	plaintext -> UTF-8 bytes -> AES-256-CBC -> ciphertext -> base32hex -> compacted token

The key is derived per call with PBKDF2-HMAC-SHA1 from a passphrase and salt; the CBC
IV is fixed by configuration. Decoding runs the exact inverse.

# Layout

The token module is split across sibling packages under internal/token:

  - domain: alphabet, sentinel letters, and codec errors
  - service: the base32hex codec and the padding compaction transform
  - usecase (this package): pipeline orchestration, batch fan-out, metrics decorator,
    and the empty-string-on-failure adapter
  - http: gin handlers and DTOs

# Token Format

Tokens use the base32hex alphabet 0-9A-V. Trailing "=" padding is replaced, longest run
first, by sentinel letters: Z for four, Y for three, X for two, W for one. Base32hex pads
with 0, 1, 3, 4 or 6 characters, so a token ends in nothing, W, Y, Z, or ZX. With the
sentinels expanded, a token's length is a multiple of 8.

	"f"     -> CO======  -> COZX
	"fo"    -> CPNG====  -> CPNGZ
	"foo"   -> CPNMU===  -> CPNMUY
	"foob"  -> CPNMUOG=  -> CPNMUOGW
	"fooba" -> CPNMUOJ1  -> CPNMUOJ1

Decoding is case-insensitive and ignores surrounding whitespace. Any other deviation
from the canonical form (foreign characters, misplaced sentinels, bad padding, stray
trailing bits) is rejected.

# Security

With the deployed defaults (empty passphrase, constant salt and IV, 20 iterations)
equal plaintexts always give equal tokens and there is no integrity tag. The scheme
hides plaintext from casual inspection; it does not provide confidentiality against
anyone who knows the parameters.
*/
package usecase
