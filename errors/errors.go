package errors

import "fmt"

// Dispatch failure kinds. Each maps to a stable, distinguishable error
// so the transport layer can pick a status without parsing messages.
var (
	ErrFeaturesValidation   = fmt.Errorf("features do not match the project contract")
	ErrLabelsValidation     = fmt.Errorf("labels do not match the declared label set")
	ErrInvalidArgument      = fmt.Errorf("invalid argument")
	ErrNoAlgorithmAvailable = fmt.Errorf("no algorithm available")
	ErrFeaturesTransformer  = fmt.Errorf("features transformer rejected the payload")
	ErrLabelsTransformer    = fmt.Errorf("labels transformer rejected the response")
	ErrBackendDecode        = fmt.Errorf("backend response could not be decoded")
	ErrRemoteCall           = fmt.Errorf("remote serving call failed")
	ErrPersistence          = fmt.Errorf("prediction persistence failed")
)

// Registry and auth failures.
var (
	ErrProjectNotFound   = fmt.Errorf("project not found")
	ErrAlgorithmNotFound = fmt.Errorf("algorithm not found")
	ErrInvalidAPIKey     = fmt.Errorf("invalid api key")
	ErrTokenGeneration   = fmt.Errorf("token generation failed")
	ErrInvalidToken      = fmt.Errorf("invalid token")
)
