package repository

// Option applies a configuration option to the RegistryStore.
type Option func(*RegistryStore)

// WithCapacityEnforcement makes Signup reject activities whose participant
// count reached MaxParticipants.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *RegistryStore) {
		s.enforceCapacity = enabled
	}
}
