package config

var Profiles = map[string]*Config{
	"interactive": {
		Checks: ChecksConfig{AbortOnFailure: true},
		Lab:    LabConfig{Workers: DefaultWorkers},
		Store:  StoreConfig{Enabled: true, Path: DefaultDBPath},
		Log:    LogConfig{Level: "info"},
	},
	"dev": {
		Checks: ChecksConfig{AbortOnFailure: false},
		Lab:    LabConfig{Workers: 1},
		Store:  StoreConfig{Enabled: false, Path: DefaultDBPath},
		Log:    LogConfig{Level: "debug", Development: true},
	},
	// ci suppresses stacktraces so failure reports compare equal
	// across machines.
	"ci": {
		Checks: ChecksConfig{AbortOnFailure: false, SuppressStacktrace: true},
		Lab:    LabConfig{Workers: DefaultWorkers},
		Store:  StoreConfig{Enabled: true, Path: DefaultDBPath},
		Log:    LogConfig{Level: "warn"},
	},
}

func GetProfile(name string) *Config {
	cfg, ok := Profiles[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListProfiles() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	return names
}
