package web

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestGetErrorMsg(t *testing.T) {
	type request struct {
		ID   int64  `validate:"required,min=1"`
		Size string `validate:"omitempty,oneof=small large"`
		Name string `validate:"max=3"`
	}

	testCases := []struct {
		name string
		req  request
		want string
	}{
		{
			name: "Required",
			req:  request{},
			want: "ID is required",
		},
		{
			name: "Min",
			req:  request{ID: -1},
			want: "ID must be at least 1",
		},
		{
			name: "OneOf",
			req:  request{ID: 1, Size: "huge"},
			want: "Size must be one of: small large",
		},
		{
			name: "Max",
			req:  request{ID: 1, Name: "long"},
			want: "Name must be at most 3",
		},
	}

	v := validator.New()

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)

			var ve validator.ValidationErrors
			if !errors.As(err, &ve) {
				t.Fatalf("v.Struct(%+v) returned error %v, want validator.ValidationErrors", tc.req, err)
			}

			if got := ve[0].Field() + GetErrorMsg(ve[0]); got != tc.want {
				t.Errorf("GetErrorMsg() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestError(t *testing.T) {
	got := Error(errors.New("boom"))
	if got.Error != "boom" || got.Data != nil {
		t.Errorf("Error(boom) = %+v, want {Error: boom}", got)
	}
}
