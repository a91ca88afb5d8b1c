// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strconv"
	"strings"
)

// Supported key-derivation algorithms.
const (
	KDFPBKDF2SHA256 = "pbkdf2-sha256"
	KDFArgon2id     = "argon2id"
)

const (
	// SaltSize is the length of every generated salt in bytes.
	SaltSize = 16

	// MinPBKDF2Iterations is the floor for PBKDF2 records created from now on.
	MinPBKDF2Iterations = 100_000

	// MinArgon2MemoryKiB is the OWASP minimum memory cost for Argon2id (19 MiB).
	MinArgon2MemoryKiB = 19 * 1024

	// Ceilings for parameters read from records (Argon2id memory: 1 GiB).
	MaxPBKDF2Iterations = 10_000_000
	MaxArgon2Time       = 64
	MaxArgon2MemoryKiB  = 1024 * 1024
	MaxArgon2Lanes      = 255
)

// KDFParams describes one password-to-key derivation. The parameters are
// stored next to every salt so that raising the cost later never breaks
// records written with the old cost.
type KDFParams struct {
	// Algorithm is one of [KDFPBKDF2SHA256] or [KDFArgon2id].
	Algorithm string

	// Iterations is the PBKDF2 iteration count or the Argon2id time cost.
	Iterations int

	// MemoryKiB is the Argon2id memory cost. Unused by PBKDF2.
	MemoryKiB uint32

	// Parallelism is the Argon2id lane count. Unused by PBKDF2.
	Parallelism uint8
}

// DefaultKDFParams returns PBKDF2-HMAC-SHA256 with 100 000 iterations, the
// parameters every record without an explicit KDF was written with.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Algorithm:  KDFPBKDF2SHA256,
		Iterations: MinPBKDF2Iterations,
	}
}

// Validate checks that the parameters are usable at all. It does not check
// strength; see [KDFParams.CheckStrength].
func (p KDFParams) Validate() error {
	switch p.Algorithm {
	case KDFPBKDF2SHA256:
		if p.Iterations <= 0 {
			return fmt.Errorf("%w: iterations must be positive", ErrInvalidArgument)
		}
		if p.Iterations > MaxPBKDF2Iterations {
			return fmt.Errorf("%w: pbkdf2 iterations above %d", ErrUnsupportedKDF, MaxPBKDF2Iterations)
		}
	case KDFArgon2id:
		if p.Iterations <= 0 || p.MemoryKiB == 0 || p.Parallelism == 0 {
			return fmt.Errorf("%w: argon2id time, memory and parallelism must be positive", ErrInvalidArgument)
		}
		if p.Iterations > MaxArgon2Time || p.MemoryKiB > MaxArgon2MemoryKiB {
			return fmt.Errorf("%w: argon2id time above %d or memory above %d KiB", ErrUnsupportedKDF, MaxArgon2Time, MaxArgon2MemoryKiB)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedKDF, p.Algorithm)
	}

	return nil
}

// CheckStrength reports [ErrWeakKDF] when the parameters are below the floor
// accepted for newly created records.
func (p KDFParams) CheckStrength() error {
	if err := p.Validate(); err != nil {
		return err
	}

	switch p.Algorithm {
	case KDFPBKDF2SHA256:
		if p.Iterations < MinPBKDF2Iterations {
			return fmt.Errorf("%w: pbkdf2 needs at least %d iterations", ErrWeakKDF, MinPBKDF2Iterations)
		}
	case KDFArgon2id:
		if p.MemoryKiB < MinArgon2MemoryKiB {
			return fmt.Errorf("%w: argon2id needs at least %d KiB of memory", ErrWeakKDF, MinArgon2MemoryKiB)
		}
	}

	return nil
}

// String encodes the parameters as a compact token, e.g.
// "pbkdf2-sha256$i=100000" or "argon2id$t=3,m=65536,p=4".
func (p KDFParams) String() string {
	switch p.Algorithm {
	case KDFArgon2id:
		return fmt.Sprintf("%s$t=%d,m=%d,p=%d", p.Algorithm, p.Iterations, p.MemoryKiB, p.Parallelism)
	default:
		return fmt.Sprintf("%s$i=%d", p.Algorithm, p.Iterations)
	}
}

// ParseKDFParams decodes a token produced by [KDFParams.String]. An empty
// token yields [DefaultKDFParams] so that records written before parameters
// were recorded keep opening.
func ParseKDFParams(token string) (KDFParams, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return DefaultKDFParams(), nil
	}

	algorithm, rawParams, found := strings.Cut(token, "$")
	if !found {
		return KDFParams{}, fmt.Errorf("%w: missing parameters in %q", ErrUnsupportedKDF, token)
	}

	values := make(map[string]int)
	for _, pair := range strings.Split(rawParams, ",") {
		name, rawValue, ok := strings.Cut(pair, "=")
		if !ok {
			return KDFParams{}, fmt.Errorf("%w: bad parameter %q", ErrUnsupportedKDF, pair)
		}
		value, err := strconv.Atoi(rawValue)
		if err != nil || value < 0 {
			return KDFParams{}, fmt.Errorf("%w: bad value for %q", ErrUnsupportedKDF, name)
		}
		values[name] = value
	}

	var params KDFParams
	switch algorithm {
	case KDFPBKDF2SHA256:
		params = KDFParams{Algorithm: algorithm, Iterations: values["i"]}
	case KDFArgon2id:
		// range-check before narrowing so oversized values cannot wrap
		if values["t"] > MaxArgon2Time || values["m"] > MaxArgon2MemoryKiB || values["p"] > MaxArgon2Lanes {
			return KDFParams{}, fmt.Errorf("%w: argon2id parameters out of range", ErrUnsupportedKDF)
		}
		params = KDFParams{
			Algorithm:   algorithm,
			Iterations:  values["t"],
			MemoryKiB:   uint32(values["m"]),
			Parallelism: uint8(values["p"]),
		}
	default:
		return KDFParams{}, fmt.Errorf("%w: %q", ErrUnsupportedKDF, algorithm)
	}

	if err := params.Validate(); err != nil {
		return KDFParams{}, err
	}

	return params, nil
}
