package user

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/mrsmranau/ehomeroom/core"
)

var (
	alphaNumUnderTag   = "alphanum_"
	alphaNumUnderText  = "only alphanumeric characters and underscores are allowed"
	alphaNumUnderRegex = regexp.MustCompile(`^\w+$`)

	roleTag  = "role"
	roleText = "role must be one of: " + strings.Join(AllRoles, ", ")

	homeroomRequiredTag  = "homeroom_required"
	homeroomRequiredText = "a pengguna must be assigned to a homeroom"

	// password policy
	pwdMinLen     = 8
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = fmt.Sprintf("password must contain at least %d characters", pwdMinLen)

	pwdNoSpaceTag  = "pwdnospace"
	pwdNoSpaceText = "password must not contain whitespace"

	pwdNotAllNumTag  = "pwdnotallnum"
	pwdNotAllNumText = "password cannot be entirely numeric"

	pwdMaxSim      = .7
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "password cannot be similar to the username or full name"
)

func init() {
	_ = core.Validate.RegisterValidation(alphaNumUnderTag, alphaNumUnderValidation)
	core.RegisterCustomTranslation(alphaNumUnderTag, alphaNumUnderText)

	_ = core.Validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(roleTag, roleText)

	core.Validate.RegisterStructValidation(newUserStructValidation, NewUser{})
	core.RegisterCustomTranslation(homeroomRequiredTag, homeroomRequiredText)
}

// Custom Validators

// alphaNumUnderValidation only allows alphanumeric characters and underscores.
func alphaNumUnderValidation(fl validator.FieldLevel) bool {
	return alphaNumUnderRegex.MatchString(fl.Field().String())
}

func roleValidation(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	for _, r := range AllRoles {
		if role == r {
			return true
		}
	}
	return false
}

// newUserStructValidation does NewUser's struct level validation.
func newUserStructValidation(sl validator.StructLevel) {
	nu, ok := sl.Current().Interface().(NewUser)
	if !ok {
		return
	}
	if nu.Role == RolePengguna && !nu.HomeroomID.Valid {
		sl.ReportError(nu.HomeroomID, "homeroom_id", "HomeroomID", homeroomRequiredTag, "")
	}
}

// CheckPasswordPolicy applies the password policy and returns the tag of the first broken rule,
// or "" when the password is acceptable:
// - minLen: 8
// - no whitespace
// - not all numeric
// - not similar to the username or full name
func CheckPasswordPolicy(pwd string, attrs ...string) string {
	pwdLen := len([]rune(pwd))
	if pwdLen < pwdMinLen {
		return pwdMinLenTag
	}

	var digitCount int
	for _, char := range pwd {
		if unicode.IsSpace(char) {
			return pwdNoSpaceTag
		}
		if unicode.IsDigit(char) {
			digitCount++
		}
	}
	if digitCount == pwdLen {
		return pwdNotAllNumTag
	}

	lpwd := strings.ToLower(pwd)
	for _, attr := range attrs {
		attr = strings.ToLower(attr)
		if attr == "" {
			continue
		}
		ratio := difflib.NewMatcher(strings.Split(lpwd, ""), strings.Split(attr, "")).QuickRatio()
		if ratio >= pwdMaxSim {
			return pwdAttrSimTag
		}
	}
	return ""
}

// PasswordPolicyText returns the human readable message for a policy tag.
func PasswordPolicyText(tag string) string {
	switch tag {
	case pwdMinLenTag:
		return pwdMinLenText
	case pwdNoSpaceTag:
		return pwdNoSpaceText
	case pwdNotAllNumTag:
		return pwdNotAllNumText
	case pwdAttrSimTag:
		return pwdAttrSimText
	default:
		return ""
	}
}
