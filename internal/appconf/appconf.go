package appconf

// Environment names the operating mode of the process. Tests must use
// Test so the database layer refuses to write fixture data to disk.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value to an Environment.
// Unknown values fall back to development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

// Config holds all the runtime settings for the Application. Values are
// read from command-line flags (with .env fallback) when the process
// starts and never change afterwards.
type Config struct {
	Port      int
	Env       Environment
	DBPath    string
	RateLimit int
}
