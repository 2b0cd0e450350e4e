package formatter_test

import (
	"os"
	"time"

	"github.com/philipp01105/minilog/formatter"
)

func ExampleWriteFields() {
	formatter.WriteFields(os.Stdout, []formatter.Field{
		{Key: "status", Value: 200},
		{Key: "path", Value: "/api/users"},
		{Key: "took", Value: 1500 * time.Millisecond},
		{Key: "agent", Value: "curl 8.0"},
	})
	// Output:
	//  status=200 path=/api/users took=1.5s agent="curl 8.0"
}
