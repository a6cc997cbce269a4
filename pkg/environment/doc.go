// Package environment names the environments an application runs in and
// parses them from configuration values.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//		// ...
//	}
package environment
