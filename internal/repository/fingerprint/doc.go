// Package fingerprint persists XXH64 fingerprints of build inputs so the
// builder can skip the freeze step when nothing changed since the last
// successful run.
package fingerprint
