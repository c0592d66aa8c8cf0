package validation

import "go-vehicle-api/internal/model"

func LoginRules() RuleSet[model.LoginRequest] {
	email := func(r model.LoginRequest) any { return r.Email }
	password := func(r model.LoginRequest) any { return r.Password }

	return RuleSet[model.LoginRequest]{
		{Field: "email", Tag: "required", Message: "email is required", Value: email},
		{Field: "email", Tag: "email", Message: "email must be a valid address", Value: email},
		{Field: "password", Tag: "required", Message: "password is required", Value: password},
	}
}

func AccountRules() RuleSet[model.AccountRequest] {
	email := func(r model.AccountRequest) any { return r.Email }
	password := func(r model.AccountRequest) any { return r.Password }
	role := func(r model.AccountRequest) any { return r.Role }

	return RuleSet[model.AccountRequest]{
		{Field: "email", Tag: "required", Message: "email is required", Value: email},
		{Field: "email", Tag: "email", Message: "email must be a valid address", Value: email},
		{Field: "email", Tag: "max=255", Message: "email must be at most 255 characters", Value: email},
		{Field: "password", Tag: "required", Message: "password is required", Value: password},
		{Field: "password", Tag: "min=6", Message: "password must be at least 6 characters", Value: password},
		{Field: "password", Tag: "max=100", Message: "password must be at most 100 characters", Value: password},
		{Field: "password", Tag: "password_strength", Message: "password must contain a lowercase letter, an uppercase letter and a digit", Value: password},
		{Field: "role", Tag: "required", Message: "role is required", Value: role},
		{Field: "role", Tag: "oneof=admin editor", Message: "role must be admin or editor", Value: role},
	}
}

func AccountUpdateRules() RuleSet[model.AccountUpdateRequest] {
	email := func(r model.AccountUpdateRequest) any { return r.Email }
	password := func(r model.AccountUpdateRequest) any { return r.Password }
	role := func(r model.AccountUpdateRequest) any { return r.Role }

	return RuleSet[model.AccountUpdateRequest]{
		{Field: "email", Tag: "required", Message: "email is required", Value: email},
		{Field: "email", Tag: "email", Message: "email must be a valid address", Value: email},
		{Field: "email", Tag: "max=255", Message: "email must be at most 255 characters", Value: email},
		{Field: "password", Tag: "required", Message: "password is required", Value: password},
		{Field: "password", Tag: "max=100", Message: "password must be at most 100 characters", Value: password},
		{Field: "role", Tag: "required", Message: "role is required", Value: role},
		{Field: "role", Tag: "oneof=admin editor", Message: "role must be admin or editor", Value: role},
	}
}

func PasswordChangeRules() RuleSet[model.PasswordChange] {
	password := func(r model.PasswordChange) any { return r.Password }

	return RuleSet[model.PasswordChange]{
		{Field: "password", Tag: "min=6", Message: "password must be at least 6 characters", Value: password},
		{Field: "password", Tag: "password_strength", Message: "password must contain a lowercase letter, an uppercase letter and a digit", Value: password},
	}
}

func VehicleRules() RuleSet[model.VehicleRequest] {
	name := func(r model.VehicleRequest) any { return r.Name }
	brand := func(r model.VehicleRequest) any { return r.Brand }
	year := func(r model.VehicleRequest) any { return r.Year }

	return RuleSet[model.VehicleRequest]{
		{Field: "name", Tag: "required", Message: "name is required", Value: name},
		{Field: "name", Tag: "min=2,max=150", Message: "name must be between 2 and 150 characters", Value: name},
		{Field: "name", Tag: "name_chars", Message: "name may only contain letters, digits, spaces and hyphens", Value: name},
		{Field: "brand", Tag: "required", Message: "brand is required", Value: brand},
		{Field: "brand", Tag: "min=2,max=100", Message: "brand must be between 2 and 100 characters", Value: brand},
		{Field: "brand", Tag: "brand_chars", Message: "brand may only contain letters, spaces and hyphens", Value: brand},
		{Field: "year", Tag: "min=1950", Message: "year must be 1950 or later", Value: year},
		{Field: "year", Tag: "max_model_year", Message: "year must not be later than next year", Value: year},
	}
}

// Default returns a dispatcher with every request rule set registered.
func Default(opts ...Option) *Dispatcher {
	d := NewDispatcher(opts...)
	Register(d, LoginRules())
	Register(d, AccountRules())
	Register(d, AccountUpdateRules())
	Register(d, PasswordChangeRules())
	Register(d, VehicleRules())
	return d
}
