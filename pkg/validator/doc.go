// Package validator provides small, composable validation rules.
//
// A Rule couples a check with the error it produces. Rules are executed with
// either Apply, which runs all rules and aggregates every failure into a
// ValidationErrors value, or ApplyFirst, which runs rules in order and stops
// at the first failure, the mode used where callers surface one message at a
// time (registration, password change).
//
//	err := validator.ApplyFirst(
//	    validator.ValidEmail("email", email),
//	    validator.BetweenLenString("username", username, 3, 50),
//	    validator.StrongPassword("password", password),
//	    validator.PasswordsMatch("confirm_password", password, confirm),
//	    validator.RequiredString("first_name", firstName),
//	)
//	if err != nil {
//	    msg := validator.ExtractValidationErrors(err).First()
//	    ...
//	}
//
// ValidationErrors implements error, so rule failures travel through normal
// error returns while IsValidationError distinguishes them from
// infrastructure failures.
package validator
