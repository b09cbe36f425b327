// Package niche partitions the elevation range into per-node bands.
//
// Each non-marine node owns exactly one niche: the elevation band
// centered on its own elevation. The band half-width is either a fixed
// elevation value (Fixed) or a fraction of the grid's non-marine
// elevation range (Percent); the choice is resolved once at Binner
// construction, so downstream code never branches on it.
//
// A band may be wider than the whole elevation range, in which case the
// niche simply includes every non-marine node. Binners are deterministic
// and stateless after construction.
package niche
