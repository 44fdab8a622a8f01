package glm

type Vec2f = Vec2[float32]
type Vec2i = Vec2[int]

type Rectf = Rect[float32]
type Recti = Rect[int]
