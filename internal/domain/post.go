package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Post is a single social-platform submission as observed at fetch time.
// Immutable within a scan cycle.
type Post struct {
	ID          string
	Title       string
	Community   string
	Author      string
	Score       int
	NumComments int
	CreatedAt   time.Time
	URL         string // external link, empty for self posts
	Body        string
	Permalink   string
}

// Fingerprint identifies a post across scan cycles. Equal posts always
// yield equal fingerprints.
type Fingerprint string

// Fingerprint derives the dedup key from the platform id and community.
func (p Post) Fingerprint() Fingerprint {
	sum := sha256.Sum256([]byte(p.ID + ":" + p.Community))
	return Fingerprint(hex.EncodeToString(sum[:]))
}

// Observation is a point-in-time engagement snapshot for a post.
// Appended by the velocity tracker, never mutated.
type Observation struct {
	Timestamp   time.Time
	Score       int
	NumComments int
}

// VelocityScore is the engagement growth rate derived from at least two
// observations. Valid is false when there is insufficient data; PerHour is
// meaningless in that case and must not be read as zero growth.
type VelocityScore struct {
	PerHour float64
	Valid   bool
}

// Candidate is a post prepared for risk scoring: the post itself, its
// current velocity, and an excerpt of linked external content if one
// could be fetched.
type Candidate struct {
	Post            Post
	Velocity        VelocityScore
	ExternalSummary string
}

// AgeHours returns the post age at scoring time, in hours. Zero when the
// creation timestamp is unknown.
func (c Candidate) AgeHours() float64 {
	if c.Post.CreatedAt.IsZero() {
		return 0
	}
	return time.Since(c.Post.CreatedAt).Hours()
}
