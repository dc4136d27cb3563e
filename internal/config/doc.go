// Package config holds the runtime configuration of sigdec: the analysis
// tunables, output format selection and the optional .sigdec.yaml file with
// named profiles.
package config
