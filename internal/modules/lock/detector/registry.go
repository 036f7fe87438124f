// Package detector holds the stateless lock detectors and the registry that
// maps each lock type to its detector.
package detector

import (
	"log/slog"
	"sort"

	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	message "github.com/reshetovitsme/chat-moderator/internal/modules/message/domain"
	"github.com/samber/lo"
)

// Detector decides whether a message breaks one lock. Implementations must
// be side-effect free and safe for concurrent use.
type Detector interface {
	LockType() domain.LockType
	Detect(msg *message.Message, dc *domain.DetectionContext) bool
}

// Registry maps lock types to detectors. It is immutable after construction.
type Registry struct {
	detectors map[domain.LockType]Detector
}

// NewRegistry indexes detectors by lock type; on duplicates the last one wins
func NewRegistry(detectors ...Detector) *Registry {
	r := &Registry{detectors: make(map[domain.LockType]Detector, len(detectors))}
	for _, d := range detectors {
		if _, dup := r.detectors[d.LockType()]; dup {
			slog.Warn("Duplicate lock detector registration, replacing", "lock_type", d.LockType())
		}
		r.detectors[d.LockType()] = d
	}
	return r
}

// DefaultRegistry registers a detector for every known lock type
func DefaultRegistry() *Registry {
	detectors := []Detector{
		Forward(),
		ForwardUser(),
		ForwardChannel(),
		URL(),
		Invite(),
		Commands(),
		Mention(),
		Text(),
		RTL(),
		Inline(),
		AnonChannel(),
	}
	detectors = append(detectors, ContentDetectors()...)
	detectors = append(detectors, EntityDetectors()...)
	return NewRegistry(detectors...)
}

// Get returns the detector registered for lockType
func (r *Registry) Get(lockType domain.LockType) (Detector, bool) {
	d, ok := r.detectors[lockType]
	return d, ok
}

// Types returns the registered lock types in sorted order
func (r *Registry) Types() []domain.LockType {
	types := lo.Keys(r.detectors)
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// detectorFunc adapts a plain function to Detector
type detectorFunc struct {
	lockType domain.LockType
	detect   func(msg *message.Message, dc *domain.DetectionContext) bool
}

func (d detectorFunc) LockType() domain.LockType { return d.lockType }

func (d detectorFunc) Detect(msg *message.Message, dc *domain.DetectionContext) bool {
	return d.detect(msg, dc)
}
