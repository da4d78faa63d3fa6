package serverutils

// BaseResponse is the envelope every JSON endpoint returns.
type BaseResponse[T any] struct {
	Success bool                   `json:"success"`
	Code    int                    `json:"code,omitempty"`
	Message string                 `json:"message"`
	Data    T                      `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
		Error:   message,
	}
}

func ErrorResponseWithMeta(code int, message, errCode string, meta map[string]interface{}) BaseResponse[any] {
	res := ErrorResponse(code, message)
	res.Meta = meta
	if res.Meta == nil {
		res.Meta = map[string]interface{}{}
	}
	res.Meta["error_code"] = errCode
	return res
}
