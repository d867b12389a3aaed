package ratefunc

import (
	"github.com/fogleman/ease"
)

// Easing curves. All of them map 0 to 0 and 1 to 1; the Back and Elastic
// variants overshoot in between.
var (
	EaseInQuad       Func = ease.InQuad
	EaseOutQuad      Func = ease.OutQuad
	EaseInOutQuad    Func = ease.InOutQuad
	EaseInCubic      Func = ease.InCubic
	EaseOutCubic     Func = ease.OutCubic
	EaseInOutCubic   Func = ease.InOutCubic
	EaseInSine       Func = ease.InSine
	EaseOutSine      Func = ease.OutSine
	EaseInOutSine    Func = ease.InOutSine
	EaseInExpo       Func = ease.InExpo
	EaseOutExpo      Func = ease.OutExpo
	EaseInOutExpo    Func = ease.InOutExpo
	EaseInCirc       Func = ease.InCirc
	EaseOutCirc      Func = ease.OutCirc
	EaseInOutCirc    Func = ease.InOutCirc
	EaseInBack       Func = ease.InBack
	EaseOutBack      Func = ease.OutBack
	EaseInOutBack    Func = ease.InOutBack
	EaseInElastic    Func = ease.InElastic
	EaseOutElastic   Func = ease.OutElastic
	EaseInOutElastic Func = ease.InOutElastic
	EaseInBounce     Func = ease.InBounce
	EaseOutBounce    Func = ease.OutBounce
	EaseInOutBounce  Func = ease.InOutBounce
)
