package store

// Collection and singleton addresses used across the service.
const (
	CollectionProjects = "projects"
	CollectionMessages = "messages"
	CollectionSettings = "settings"

	// SettingsProfileKey is the fixed identity of the profile singleton.
	SettingsProfileKey = "profile"
)

// Shared field names for documents in the collections above.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldTags        = "tags"
	FieldImage       = "image"
	FieldRepoURL     = "repoUrl"
	FieldLiveURL     = "liveUrl"

	FieldName  = "name"
	FieldEmail = "email"
	FieldBody  = "body"
	FieldRead  = "read"
)
