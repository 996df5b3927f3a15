// Package config loads the installation bindings consumed by the site
// template, stored in YAML format.
//
// The bindings file describes the installed application: the hostname
// the front-end server answers on and the filesystem paths the rendered
// configuration points into. By default it lives at
// /etc/siteconf/installation.yaml.
//
// Example installation.yaml:
//
//	system:
//	  hostname: example.com
//	paths:
//	  run_dir: /var/run/app
//	  install_dir: /opt/app
//
// # Binding Keys
//
// The template references bindings by dotted, installation.-prefixed
// keys. Use the key constants (KeyHostname, KeyRunDir, KeyInstallDir)
// instead of string literals.
//
// # Usage
//
//	inst, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	inst.System.Hostname = "example.com" // flag override
//
//	content, err := template.Expand(template.Default(), inst.Bindings())
//
// Bindings omits empty values, so the template engine fails fast and
// names each key that was never supplied.
//
// # Thread Safety
//
// Installation values are NOT thread-safe. Callers must implement their
// own synchronization if mutating them from multiple goroutines.
package config
