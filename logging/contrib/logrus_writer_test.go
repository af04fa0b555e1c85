package contrib

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/dlshle/golodash/logging"
	"github.com/dlshle/golodash/test_utils"
	"github.com/sirupsen/logrus"
)

func TestLogrusWriter(t *testing.T) {
	test_utils.NewGroup("logrus writer", "").Cases(
		test_utils.New("forwards level, message and fields", func() {
			var buf bytes.Buffer
			base := logrus.New()
			base.SetOutput(&buf)
			base.SetFormatter(&logrus.JSONFormatter{})
			base.SetLevel(logrus.TraceLevel)

			l := logging.CreateLevelLogger(NewLogrusWriter(base), "[stack]", logging.LogAllWaterMark)
			l.Warn(logging.WrapCtx(context.Background(), "op", "pop"), "empty")

			var decoded map[string]any
			test_utils.AssertNil(json.Unmarshal(buf.Bytes(), &decoded))
			test_utils.AssertEquals(decoded["level"].(string), "warning")
			test_utils.AssertEquals(decoded["msg"].(string), "empty")
			test_utils.AssertEquals(decoded["op"].(string), "pop")
			test_utils.AssertEquals(decoded["prefix"].(string), "[stack]")
		}),
		test_utils.New("fatal does not exit", func() {
			var buf bytes.Buffer
			base := logrus.New()
			base.SetOutput(&buf)
			l := logging.CreateLevelLogger(NewLogrusWriter(base), "", logging.LogAllWaterMark)
			l.Fatal(context.Background(), "still here")
			test_utils.AssertStringContains(buf.String(), "still here")
		}),
	).Do(t)
}
