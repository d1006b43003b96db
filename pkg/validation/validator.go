package validation

import (
	"github.com/go-playground/validator/v10"
)

// Message is a single user-visible validation failure, stashed in the
// session flash slot and rendered by the next view.
type Message struct {
	Msg string `json:"msg"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs every validator on form and collects all violations, in
// struct field order, into user-facing messages. It never stops at the
// first failure. messages maps "Field.tag" (with a bare "Field"
// fallback) to the text shown to the user.
func Struct(form any, messages map[string]string) []Message {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Message{{Msg: "Invalid request."}}
	}

	out := make([]Message, 0, len(verrs))
	for _, fe := range verrs {
		if m, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
			out = append(out, Message{Msg: m})
			continue
		}
		if m, ok := messages[fe.StructField()]; ok {
			out = append(out, Message{Msg: m})
			continue
		}
		out = append(out, Message{Msg: "The " + fe.StructField() + " field is not valid."})
	}
	return out
}
