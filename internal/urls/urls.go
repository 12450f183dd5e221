package urls

// Repository is the project home
const Repository = "https://github.com/muurk/plantdeck"

// Issues is where bugs and feature requests go
const Issues = Repository + "/issues"

// RapidAPIHub is where users sign up for the key the catalog requires
const RapidAPIHub = "https://rapidapi.com/hub"
