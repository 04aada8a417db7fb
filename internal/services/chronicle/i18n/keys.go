// Package i18n holds the message catalog for chronicle entry phrasing.
package i18n

// Message keys for artifact entry descriptions.
const (
	// ArtifactFoundKey phrases an artifact entering the history.
	ArtifactFoundKey = "chronicle.artifact_found"
	// ArtifactMissedKey phrases an artifact lost before pickup.
	ArtifactMissedKey = "chronicle.artifact_missed"
)
