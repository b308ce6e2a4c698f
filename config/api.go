package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public read-only paths (registrations listing and GraphQL carry no secrets)
	return []string{"/api/registrations/:kind", "/api/registrations/:kind/:name", "/graphql"}
}
