package config

const configVersionV0 = "0"

// configV0 is the placeholder written by early releases; it carried no
// settings besides its version.
type configV0 struct {
	Version string `json:"version"` // required by vconfig-go
}

// migrateV0 upgrades a v0 configuration to the defaults of v1
func migrateV0(_ *configV0) *configV1 {
	return newConfigV1()
}
