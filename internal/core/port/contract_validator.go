package port

// ContractValidatorPort проверяет слабоструктурированный JSON-payload
// по версионированной схеме контракта.
type ContractValidatorPort interface {
	Validate(contractName, version string, payload []byte) error
}
