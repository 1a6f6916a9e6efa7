//nolint:ireturn
package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DecodeJSON consumes the result of a service call. It is shaped to wrap the
// call directly: httpclient.DecodeJSON[User](users.Get(ctx, id)).
func DecodeJSON[T any](resp *http.Response, err error) (T, error) {
	var result T
	err = DecodeInto(resp, err, &result)

	return result, err
}

func DecodeInto(resp *http.Response, err error, out any) error {
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return nil
}

func ReadAll(resp *http.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return body, nil
}

// Drain discards and closes the body, for calls whose response is not needed.
func Drain(resp *http.Response, err error) error {
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	_, err = io.Copy(io.Discard, resp.Body)

	return err
}
