package parts

import (
	_ "embed"
	"html/template"
)

//go:embed assets/admin.css
var adminCSS string

// GetCriticalCSS returns the admin stylesheet for inlining into <style>.
func GetCriticalCSS() template.CSS {
	return template.CSS(adminCSS)
}
