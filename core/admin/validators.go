package admin

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/brightacademy/backend/core"
)

// password policy
var (
	pwdMinLen     = 8
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = fmt.Sprintf("password must contain at least %d characters", pwdMinLen)

	pwdNoSpaceTag  = "pwdnospace"
	pwdNoSpaceText = "password must not contain whitespace"

	pwdNotAllNumTag  = "pwdnotallnum"
	pwdNotAllNumText = "password cannot be entirely numeric"

	pwdMaxSim      = .7
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "password cannot be similar to name or email"
)

func init() {
	core.Validate.RegisterStructValidation(newAdminStructValidation, NewAdmin{})

	core.RegisterCustomTranslation(core.Validate, core.Translator, pwdMinLenTag, pwdMinLenText)
	core.RegisterCustomTranslation(core.Validate, core.Translator, pwdNoSpaceTag, pwdNoSpaceText)
	core.RegisterCustomTranslation(core.Validate, core.Translator, pwdNotAllNumTag, pwdNotAllNumText)
	core.RegisterCustomTranslation(core.Validate, core.Translator, pwdAttrSimTag, pwdAttrSimText)
}

func newAdminStructValidation(sl validator.StructLevel) {
	na := sl.Current().Interface().(NewAdmin)
	validatePassword(sl, na.Password, na.Name, na.Email)
}

// validatePassword applies the password policy to the provided password:
// - minLen: 8
// - no whitespace
// - not all numeric
// - no similarity to the admin's name or email
func validatePassword(sl validator.StructLevel, pwd string, attrs ...string) {
	if pwd == "" {
		return // `required` reports it
	}
	reportErr := func(tag string) {
		sl.ReportError(pwd, "password", "Password", tag, "")
	}

	if len(pwd) < pwdMinLen {
		reportErr(pwdMinLenTag)
		return
	}
	if strings.ContainsAny(pwd, " \t\n") {
		reportErr(pwdNoSpaceTag)
		return
	}
	if isAllNumeric(pwd) {
		reportErr(pwdNotAllNumTag)
		return
	}
	for _, attr := range attrs {
		if attr == "" {
			continue
		}
		if similarity(strings.ToLower(pwd), strings.ToLower(attr)) > pwdMaxSim {
			reportErr(pwdAttrSimTag)
			return
		}
	}
}

func isAllNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func similarity(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
