package out

// ArtifactStore defines the contract for checking durable artifacts on the
// host. The bootstrap use case relies on the mere existence of its artifact;
// the artifact's contents are owned by the certificate tooling.
type ArtifactStore interface {
	Exists(path string) (bool, error)
}
