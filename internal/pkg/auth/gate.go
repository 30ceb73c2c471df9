package auth

// The portal "login" is a shared-secret gate, not authentication: one global
// admin password and one password per class, compared in plaintext against
// deploy-time configuration. The values ship with the deployment and must be
// treated as public knowledge. Anyone wanting real access control has to
// replace this with per-user credentials and server-side verification.

// GateConfig holds the shared portal passwords.
type GateConfig struct {
	AdminPassword  string
	ClassPasswords map[string]string
}

// Gate validates portal passwords against the configured shared secrets.
type Gate struct {
	config GateConfig
}

// NewGate creates a new Gate.
func NewGate(config GateConfig) *Gate {
	return &Gate{config: config}
}

// ValidateAdminPassword reports whether the given password matches the shared
// admin password.
func (g *Gate) ValidateAdminPassword(password string) bool {
	return g.config.AdminPassword != "" && password == g.config.AdminPassword
}

// ValidateClassPassword reports whether the given password matches the shared
// password for the given class.
func (g *Gate) ValidateClassPassword(class, password string) bool {
	expected, ok := g.config.ClassPasswords[class]
	return ok && password == expected
}

// KnownClass reports whether a class has a configured password.
func (g *Gate) KnownClass(class string) bool {
	_, ok := g.config.ClassPasswords[class]
	return ok
}

// PasswordHint returns the hint text shown next to a class login form.
func (g *Gate) PasswordHint(class string) string {
	if g.KnownClass(class) {
		return "Format: class[number]math[year]"
	}
	return "Contact your teacher for the password"
}
