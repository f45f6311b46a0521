/*
go-poseviz renders a per frame overlay of detected human poses on top of a
video or image stream.  Each pose is drawn as a set of keypoints joined by
skeleton bones, with optional body part text labels rasterised into a cached
layer that is composited over the base image.

The root package holds the pose data model that pose estimation models are
converted into.  Drawing primitives live in the render subpackage and the per
frame lifecycle (show, compose overlay, render, unload) is driven by the
visualizer subpackage.

See example code and usage in the example subdirectory.
*/
package poseviz
