package config

// FieldSizes computes how many fields the serializer writes for the success
// and the failure branch under cfg. extraEnabled tells whether the failure
// type carries an extra message.
//
// Both branches start at one field: the body on success, the message on
// failure. A status sign adds one to both. Fixed field mode adds the
// placeholder of the other branch to both. An enabled extra message field
// adds one to failure, and to success when fixed.
func FieldSizes(cfg Config, extraEnabled bool) (success, failure int) {
	success, failure = 1, 1
	if cfg.sign != nil {
		success++
		failure++
	}
	if cfg.fixedField {
		success++
		failure++
	}
	if extraEnabled && cfg.extraField != "" {
		failure++
		if cfg.fixedField {
			success++
		}
	}
	return success, failure
}
