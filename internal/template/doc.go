// Package template renders the front-end web server configuration from
// a placeholder template.
//
// Templates use Python-style named placeholders of the form %(name)s,
// the format the application's installation machinery has always used,
// so existing site templates keep working unchanged. A literal percent
// sign is written as %%.
//
// # The Embedded Template
//
// The default nginx site definition is embedded in the binary via
// go:embed. It references three installation bindings:
//
//	%(installation.system.hostname)s    server_name value
//	%(installation.paths.run_dir)s      base path of the uwsgi socket
//	%(installation.paths.install_dir)s  base path of static resources
//
// # Rendering
//
// Rendering is a pure text transformation with fail-fast validation:
//
//	content, err := template.Expand(template.Default(), bindings)
//	if err != nil {
//	    // err names the first missing binding, no output was produced
//	}
//
// Expand never emits partial output: the template is fully validated
// against the bindings before the first byte is written.
//
// # Inspection
//
// Placeholders lists the names a template references, and Missing
// reports every referenced name absent from a binding set. Both back
// the check and placeholders CLI commands.
package template
