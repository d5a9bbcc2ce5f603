package reactor

import sdkmath "cosmossdk.io/math"

type updateAdminParams struct {
	Admin string `json:"admin"`
}

type unbondParams struct {
	Tokens sdkmath.Uint `json:"tokens"`
}

type empty struct{}

func UpdateAdminMsg(admin string) map[string]any {
	return map[string]any{"update_admin": updateAdminParams{Admin: admin}}
}

func FundsDepositMsg() map[string]any {
	return map[string]any{"funds_deposit": empty{}}
}

// FundsUnbondMsg starts unbonding tokens. The amount is sent as a Uint128
// decimal string.
func FundsUnbondMsg(tokens sdkmath.Uint) map[string]any {
	return map[string]any{"funds_unbond": unbondParams{Tokens: tokens}}
}

func FundsWithdrawMsg() map[string]any {
	return map[string]any{"funds_withdraw": empty{}}
}

func FundsClaimMsg() map[string]any {
	return map[string]any{"funds_claim": empty{}}
}

func TokensDepositMsg() map[string]any {
	return map[string]any{"tokens_deposit": empty{}}
}

func TokensClaimMsg() map[string]any {
	return map[string]any{"tokens_claim": empty{}}
}
